// Package gst provides form helpers for Indian GST compliance forms: the
// GSTIN autocomplete query, document type to party type classification, the
// country driven state dropdown, API availability checks, and field tooltip
// icons.
//
// All helpers hang off a Helpers value constructed from an explicit
// bootconfig.Config; nothing is read from process globals. Forms are consumed
// through the small Form/FieldHandle interfaces so any form implementation
// (pkg/model or a host adapter) can be used.
package gst
