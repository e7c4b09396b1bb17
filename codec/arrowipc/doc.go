// Package arrowipc implements xframe's cross-runtime batch codec: the
// bidirectional conversion between partitioned Frames of canonical Rows and
// sequences of self-describing, language-neutral serialized batches (Apache
// Arrow IPC streams, one per partition) suitable for transport to and from a
// separate-runtime consumer. Row order within a partition, and partition
// boundaries themselves, are preserved exactly through a round trip; batch
// boundaries within a partition stream are a throughput optimization and
// carry no semantic meaning.
package arrowipc
