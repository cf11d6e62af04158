// Package values loads and validates the layered stack configuration.
//
// A stack file describes a fleet of services as a YAML mapping keyed by
// service name. Environment overlays (stack-<env>.yaml) and --set overrides
// are merged onto the base document before it is decoded into typed
// descriptors and validated once, up front. Service order follows document
// order in the base file, never Go map iteration order.
package values
