// error.go — the classification contract every taxonomy satisfies.
package bizerror

// Code is the set of types usable as an error code. A taxonomy picks one
// concrete code type and keeps it for every variant; mixing code types
// inside one taxonomy is a definition error, not a runtime state.
//
// Integer codes are the common case (HTTP-style catalogs, syscall-style
// tables). String codes suit registries that key errors by symbolic name
// ("ERR_CONFLICT") rather than by number. Named types over these kernels
// (type OrderCode uint32) satisfy the constraint through the ~ forms, so
// callers keep their own domain types end to end.
type Code interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~string
}

// BizError is the minimal contract a classified error exposes: a stable
// code for machines, a stable name for humans and logs, and the standard
// error message. Everything else in this package (context wrapping,
// aggregation, chain walking) is built against this interface, never
// against one concrete implementation.
//
// Implementations MUST keep Code and Name stable for the lifetime of a
// value: wrapping an error with context never changes the code or name
// observers see.
type BizError[C Code] interface {
	// error provides the canonical message string. Keep it concise; rich
	// export (JSON, structured logs) belongs to adapters outside the core.
	error

	// Code reports the classification code for this error.
	Code() C

	// Name reports the variant name as declared, e.g. "NotFound". Names
	// identify the variant; messages describe the occurrence.
	Name() string
}
