// Package model defines the typed form model GST helpers operate on. A
// FormModel satisfies gst.Form so helpers can read field values, replace
// select options, and append decorations such as tooltip icons. Relationship
// fields carry an EndpointConfig describing the options endpoint they query.
package model
