/*
Package status renders run progress for humans.

🎯 Purpose:
- Formats per-file progress lines (relative path + occurrence count)
- Formats the final summary block (files updated, total replacements)
- Tracks per-file results so tests and callers can inspect a finished run
- Mirrors every user-visible line to the context zerolog logger

🤝 Interfaces:
- Manager implements sweep.Reporter, so the sweeper stays unaware of how
  results are rendered
- FileFormatter is swappable for alternate output styles
*/
package status
