package gll

// Config is the only tuning surface the engine exposes (spec section 6):
// no environment variables, files, or persisted state are read by the
// library itself — a host that wants to load one from disk (cmd/gllrun
// does, from TOML) decodes it there and passes the value in.
type Config struct {
	// MaxAmbiguityBreadth bounds the number of distinct full-input-length
	// results retained per symbol-combinator memo entry. Zero or negative
	// means unlimited, mirroring peg.Config's CallstackLimit/LoopLimit
	// convention of "zero or negative for unlimited".
	MaxAmbiguityBreadth int
}

// DefaultConfig imposes no ambiguity breadth limit.
var DefaultConfig = Config{}
