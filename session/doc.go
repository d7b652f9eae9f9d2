// Package session houses the session Manager and concrete credential
// strategies. The Session type and the Credentials interface live in the core
// package to centralize domain contracts; keeping only implementations here
// prevents higher level packages (locator, proxies) from depending on
// concrete authentication schemes.
//
// Add additional credential strategies (federated identity, device flows,
// secret stores) in this package without changing any calling code – only the
// wiring layer needs to decide which strategy to instantiate.
package session
