// Package http implements the dashboard's HTTP transport.
//
// Pages answer with a JSON envelope holding the page data and the flash
// messages queued by the previous redirect. Form posts answer with a 303
// redirect, or with the page again and a 4xx status when the form is
// rejected. Sessions travel in a signed cookie and are checked by the
// requireSession middleware before any dashboard route runs.
package http
