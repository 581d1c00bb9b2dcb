// Package words handles word-frequency bookkeeping: tokenizing article
// text and merging the resulting counts into a durable store that
// accumulates across program runs.
package words
