// Package hash holds the password hasher (bcrypt) and the token digester
// (HMAC-SHA256) behind one interface.
package hash
