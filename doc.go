// Package aiip implements the Annotated Interactive Image Protocol file format.
//
// An AIIP file is a standard PNG with one additional ancillary chunk ("aiip")
// inserted right after IHDR. The chunk carries a zlib-compressed JSON envelope with
// the structured data behind the rendered annotations, so consumers get the data
// without parsing pixels while any PNG viewer still displays the image.
package aiip
