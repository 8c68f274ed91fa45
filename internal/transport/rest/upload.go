package rest

import "mime"

// multipartMemory is the part of a multipart form kept in memory; larger
// files spill to temporary files.
const multipartMemory = 8 << 20

// mimeType strips parameters from a Content-Type value.
func mimeType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return contentType
	}
	return mt
}
