// Sha256sum hashes files in parallel and writes one result record per file.
//
// Each record is two lines: a comment with the time spent hashing the file in
// milliseconds, then the lowercase hex digest and the path separated by two
// spaces.
//
//	#12;/var/log/syslog
//	0f4a...e91c  /var/log/syslog
//
// A file that could not be hashed gets "-" as its time and the error text in
// place of the digest. The exit status is 0 when every file was hashed, 1 when
// some were not, and 2 when the command line or config file is unusable.
package main
