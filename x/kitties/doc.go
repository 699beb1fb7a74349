/*
Package kitties is a registry of unique digital pets.

Each kitty has an immutable DNA derived from the chain state. A kitty is
either unowned, and then anyone can adopt it, or owned by an account that
can transfer it, list it for sale or abandon it. While an account owns a
kitty, the configured deposit is held from its funds. Any two kitties of
different genders can be bred into a new unowned kitty whose DNA mixes the
parents genomes.

Every successful operation emits exactly one event. The events are
published once the block is committed.
*/
package kitties
