// Package game implements a two-party game of 21: the player against the house.
//
// A Session owns a Deck and the two Hands. NewSession deals the opening cards
// and settles naturals at once; otherwise the player acts through Apply until
// they stand or bust, and RunDealer plays the house to the end. Scores are
// always computed from the hand, never stored.
package game
