package common

// EnableDebug gates the Debug helpers. Warnings and errors are always written.
var EnableDebug = false
