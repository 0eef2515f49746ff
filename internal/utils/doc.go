// Package utils provides terminal helpers shared by the commands, chiefly
// the echo-disabled prompt used when entering auth tokens.
package utils
