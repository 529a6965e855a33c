// Package media classifies library files into photos, videos, and everything
// else using fixed extension sets shared by every subcommand.
package media
