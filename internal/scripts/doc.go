// Package scripts holds behaviours that scene files attach by name.
package scripts
