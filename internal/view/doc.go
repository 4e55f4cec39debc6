// Package view is the one list/form component every console screen is built from.
//
// A screen declares its forms (FormSpec), its tables (Table) and the badge lookups
// of its enum columns once; handlers then turn the current lists and form state into
// a Page that the shared page template renders. Nothing in here talks to the backend.
package view
