package core

// Entity is an opaque stable identifier assigned by the host
// Zero is never handed out and reads as "no entity"
type Entity uint64
