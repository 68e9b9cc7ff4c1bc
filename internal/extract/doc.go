// Package extract turns uploaded files into plain text.
//
// [Dispatcher] picks a strategy from the declared MIME type first and the
// file extension second:
//
//	PDF   → text layer, or page images recognised by OCR when the layer is
//	        (nearly) empty
//	DOCX  → structured document reader
//	DOC   → structured document reader
//	TXT   → UTF-8 passthrough
//	RTF   → UTF-8 passthrough, control words are kept
//	image → OCR with the configured language profile, one retry with the
//	        fallback language
//
// The strategies are interfaces so the dispatcher can be exercised without
// Tesseract or real PDF files.
package extract
