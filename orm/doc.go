/*
Package orm splits the state into prefixed buckets, each holding a single
model type, and provides persisted counters to allocate their keys.

A bucket named "kitties" stores its models under "kitties:<key>". A sequence
named "id" of that bucket stores its counter under "_s.kitties:id".
*/
package orm
