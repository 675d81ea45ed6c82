// Package files discovers spectrum export files on disk for the batch
// conversion tool. Discovery is by extension only; whether a file actually
// parses is the parser's business.
package files
