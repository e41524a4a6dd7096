// Package task owns the per-day task lists and their JSON file.
//
// The tasks file (tasks.json) maps a day key to the ordered tasks of that day:
//
//	{
//	  "2024-06-01T00:00:00Z": [
//	    {
//	      "id": "3f1c0d3e-7a51-4c5e-9b55-0d3a4b8c2f10",
//	      "title": "Buy milk",
//	      "isDone": false,
//	      "day": "2024-06-01T00:00:00Z"
//	    }
//	  ]
//	}
//
// # Day keys
//
// A key is a calendar date rendered as midnight UTC in RFC 3339 form. The
// per-task "day" field is written from the key and ignored on read, so a task
// always belongs to the bucket it is stored in.
//
// # Limits
//
//   - At most MaxTasksPerDay (7) tasks per day. Adds beyond the cap are
//     ignored; oversized buckets in a hand-edited file are cut on load.
//   - Titles are trimmed and must not be empty.
//
// # Failure model
//
// Loading never fails: a missing, unreadable, malformed or schema-violating
// file yields an empty store. Saving happens after every mutation; a failed
// save keeps the in-memory state and is reported by Store.Err.
//
// # File format
//
// When writing the tasks file, the package uses:
//   - 2-space indentation
//   - Trailing newline
//   - Keys sorted chronologically
//   - Atomic replace (temp file + rename) under a <file>.lock file lock
package task
