// Package generation defines the Generator interface and the prompt
// machinery shared by its implementations.
//
// The package contains no provider code itself: concrete generators live
// under internal/platform (gemini for the external API, verse for the
// offline composer) and depend on this package, never the other way
// around.
package generation
