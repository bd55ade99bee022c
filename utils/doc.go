// Package utils provides time and date normalization helpers shared by the
// resolver and the output formatters.
package utils
