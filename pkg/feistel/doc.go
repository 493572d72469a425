// Package feistel implements a generic Feistel network over fixed-width unsigned words.
//
// A block is split into a high (left) and a low (right) half. Each round replaces
// the pair (L, R) with (R, f(R, key) ^ L), where f is a caller-supplied round function.
// Decryption runs the recurrence backwards, so Decrypt(Encrypt(x, k), k) == x holds
// for any round function, invertible or not, and for any number of rounds.
//
// The same key is passed unchanged to every round. There is no key schedule.
package feistel
