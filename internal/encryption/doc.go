// Package encryption seals files with the feistel engine in ECB or CBC mode.
// Each output carries a header recording the engine parameters and ends with an
// HMAC-SHA256 tag, so decryption needs only the key. Files are processed
// concurrently and written atomically.
package encryption
