// Package auth provides account management, credential verification, and
// session handling.
//
// # Components
//
//   - Service: account creation, authentication, and deletion over a
//     UserStore. Both unknown-user and wrong-password failures surface as
//     ErrInvalidCredentials.
//   - PasswordVerifier: how credentials are stored and checked. The
//     default PlaintextVerifier stores passwords as-is; BcryptVerifier
//     can be selected via AUTH_PASSWORD_SCHEME=bcrypt without touching
//     callers.
//   - SessionManager: scs-backed cookie sessions kept in memory, so a
//     restart always starts logged-out.
//   - Middleware: gin middleware gating non-public routes on a session.
package auth
