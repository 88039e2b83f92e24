/*
Package sweep implements the bulk pass over a directory tree.

	+-------------+
	|    Sweep    |
	| (Enumerate) |
	+------+------+
	       |
	+------+------+
	|    Text     |
	|  (Replace)  |
	+------+------+

🎯 Purpose:
- Recursively enumerates files under a root matching a doublestar glob
- Applies a literal replacement rule to each matched file, in place
- Aggregates per-file counts into a run summary

🔄 Flow:
1. Walk the root directory
2. Match each file's root-relative path against the pattern
3. Read, replace, write back (skip the write when nothing matched)
4. Report each result and the final summary via the Reporter

⚡ Key Responsibilities:
- Fatal-on-root vs recover-per-file error split: a root that cannot be
  enumerated aborts the run before any file is touched, while an individual
  file that cannot be read, decoded, or written is reported, counted as zero
  replacements, and skipped
- Strictly sequential processing: one file is fully read, written, and closed
  before the next is opened

🤝 Interfaces:
- text.TextReplacer: performs the actual replacement
- Reporter: receives per-file results and the run summary
*/
package sweep
