/*
Package gconf keeps the configuration of an extension in the state.

Each extension owns a single configuration entity stored under the "_c:<pkg>"
key. It is created from the "conf" section of the genesis file and can later
be changed by the configuration owner with an update message whose Patch
field carries the new values.
*/
package gconf
