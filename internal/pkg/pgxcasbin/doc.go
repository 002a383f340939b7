// Package pgxcasbin stores casbin policies in postgres through pgx and keeps
// enforcers of several processes in sync with LISTEN/NOTIFY.
package pgxcasbin
