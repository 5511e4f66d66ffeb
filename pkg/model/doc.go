// Package model defines the form object model consumed by renderers. Forms
// and fields are interfaces so callers can plug their own form library in;
// package forms provides a ready-made implementation. Every element reports
// its concrete kind, which renderer resolution walks to pick the most
// specific renderer. The built-in kinds mirror a classic form library where
// a submit button is a boolean field and an email input is a string field.
package model
