// SPDX-License-Identifier: Apache-2.0

// Package verifier implements the offline certificate-verifier runtime.
//
// It wires the rule engine, the local revocation store, and the background
// revocation-list synchronization into a single process lifecycle.
package verifier
