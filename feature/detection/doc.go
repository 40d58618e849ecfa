// Package detection implements product detection in images.
//
// Every configured vision source is asked in parallel. Their detections
// are reconciled into one list: deduplicated by name with the higher
// priority source winning, filtered by the confidence threshold, sorted by
// confidence and truncated. A failing source only shows up in the
// per-source status list of the response.
//
// # Endpoints
//
//   - POST /detect: multipart "image" file, "image_base64" form field, or
//     JSON {"image_base64": "...", "options": {"confidence_threshold": 0.5, "max_results": 3}}.
//
// Uploaded images are archived to object storage when an Archiver is set.
package detection
