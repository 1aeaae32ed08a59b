// Package domain contains the core business entities, value objects, and
// domain logic of the application: poems, their styles and lengths, and the
// validation rules they carry. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
