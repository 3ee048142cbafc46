// Package domain contains the core business entities, value objects, and
// domain logic of the application: the blog record, the supported language
// set, and the category classifier. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
