// Command media-janitor is a housekeeping CLI for photo and video libraries.
// It sorts loose event folders into year/month buckets and ships peer
// utilities for flattening trees, counting media, removing duplicates,
// repairing timestamps, and flagging damaged files.
package main
