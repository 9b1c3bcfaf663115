// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message texts shared by the
// dashboard handlers and middleware.
//
// All Msg* constants are flash messages shown after an operation. Constants
// ending in "f" are format strings taking a single %s argument.
package app

const (
	// MsgLoginRequired is flashed when a protected page is requested
	// without a valid session.
	MsgLoginRequired = "Please log in first."

	MsgBothFieldsRequired     = "Both fields are required."
	MsgInvalidEmailOrPassword = "Invalid email or password."
	MsgWelcomeBackf           = "Welcome back, %s!"
	MsgLoggedOut              = "You have been logged out."

	MsgAllFieldsRequired   = "All fields are required."
	MsgPasswordsDoNotMatch = "Passwords do not match."
	MsgPasswordTooShort    = "Password must be at least 6 characters."
	MsgPasswordTooLong     = "Password must be at most 72 bytes."
	MsgEmailAlreadyExists  = "An account with that email already exists."
	MsgAccountCreated      = "Account created! You can now log in."

	MsgRecordAdded       = "Climate record added successfully!"
	MsgRecordUpdated     = "Record updated successfully!"
	MsgRecordNotFound    = "Record not found."
	MsgRecordDeleted     = "Record deleted."
	MsgInvalidFieldf     = "Invalid value for %s."
	MsgLiveWeatherSavedf = "Live weather for %s saved to database!"

	// MsgLiveWeatherFailedf is flashed when the weather provider gave no
	// usable observation. Nothing is stored in that case.
	MsgLiveWeatherFailedf = "Could not fetch weather for '%s'. Check your API key."

	MsgNameAndEmailRequired   = "Name and email are required."
	MsgProfileUpdated         = "Profile updated successfully!"
	MsgWrongCurrentPassword   = "Current password is incorrect."
	MsgNewPasswordsDoNotMatch = "New passwords do not match."
	MsgPasswordChanged        = "Password changed successfully!"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
