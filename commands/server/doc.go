/*
Package server implements the sub-commands of the node binary: writing the
application state into a tendermint genesis file, validating it, running the
ABCI server and reading the event journal.

Every command takes the home directory and the arguments that follow the
command name, and parses its own flags with the standard flag package.
*/
package server
