package json

// Limits bounds the resources a single Parse or ApplyPatch call may
// consume. The zero value is not useful; callers that don't need custom
// limits should start from DefaultLimits.
//
// These mirror the compile-time constants of a constrained, privileged
// runtime (no arbitrary recompilation available here), realized instead
// as a struct so a host can tune them per call without rebuilding the
// package.
type Limits struct {
	// MaxDepth caps recursive nesting of arrays and objects.
	MaxDepth int
	// MaxStringLen caps the length of any String value as it appears in
	// the input (the bytes between the quotes, before escapes are
	// resolved).
	MaxStringLen int
	// MaxObjectMembers caps the number of members in any single Object.
	MaxObjectMembers int
	// MaxArrayElements caps the number of elements in any single Array.
	MaxArrayElements int
	// MaxKeyLen caps the length of any object member key.
	MaxKeyLen int
	// MaxTotalBytes caps the cumulative tracked allocation for one parse.
	MaxTotalBytes int
	// MaxPathBuffer caps the byte length of a dot-path passed to the
	// path accessor package.
	MaxPathBuffer int
}

// DefaultLimits holds the defaults named in the specification.
var DefaultLimits = Limits{
	MaxDepth:         32,
	MaxStringLen:     1 << 20,    // 1 MiB
	MaxObjectMembers: 1000,
	MaxArrayElements: 10000,
	MaxKeyLen:        256,
	MaxTotalBytes:    64 << 20, // 64 MiB
	MaxPathBuffer:    256,
}

// SmallAllocThreshold is the largest single allocation routed to the
// fast (slab pool backed) path by internal/alloc; anything larger is
// routed to the general-purpose path.
const SmallAllocThreshold = 2 << 20 // 2 MiB
