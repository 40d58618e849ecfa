// Package utils provides loose type conversion for values decoded from
// model output, where numbers may arrive as strings and lists as CSV.
package utils
