/*
Package status reads and overwrites the files a migration touches and describes what happened
to each of them.

	+-------------+       +-------------+
	|  operation  | ----> |   status    |
	| (rewrite)   |       | (disk, UI)  |
	+-------------+       +-------------+

🎯 Purpose:
- Whole-file reads through a scoped handle, rejecting content that is not UTF-8
- In-place overwrites that keep the file mode and never create missing files
- The FileStatus of a rewrite (unchanged, updated, failed) and its console line

📝 Nothing here retries or rolls back: each write is final.
*/
package status
