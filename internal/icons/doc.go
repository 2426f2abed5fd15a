// Package icons defines the symbolic icon references used by the portfolio.
//
// Content refers to icons by a stable name; templates resolve the name to a
// symbol in the embedded Lucide sprite so the content store never carries
// markup.
package icons
