// Package io reads and writes figscope's JSON files.
//
// Every view is written with [WriteJSON]: two-space indentation and no
// HTML escaping, so "<" in a comment stays "<". [ExportJSON] and
// [WriteFile] write through a temporary file so an interrupted run never
// leaves a truncated result behind.
//
// [ImportJSON] reads a file saved by the download command back into a
// [node.Node], which lets every view be rebuilt offline:
//
//	raw, err := io.ImportJSON("Checkout_ABC123.json")
//	file := figma.FileFrom(raw)
//
// [SafeName] and [DefaultOutputName] derive download file names from the
// Figma file name.
package io
