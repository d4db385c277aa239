// Package builder is the CSR construction collaborator: it is the only
// writer of graph storage. See build.go for the five-step algorithm, and
// csrerr for the error kinds it can return (ErrIdOverflow,
// ErrAllocFailure).
package builder
