// Package session implements stateless, cookie-borne sessions: the entire
// session state rides inside a signed token in an HttpOnly cookie, so no
// server-side store exists and any replica can verify any request.
//
// # Lifecycle
//
// A Session is created empty at request start and populated by verifying
// the inbound cookie. Absence of valid claims is a normal outcome, never a
// request failure: an expired token, a forged token and no cookie at all
// are deliberately indistinguishable. Application code mutates the session
// in memory (SetSubject, Set) and the Manager re-signs it into a fresh
// token with a new issued/expiry pair on Save. Clear resets to anonymous
// and tells the client to drop the cookie.
//
//	mgr, err := session.NewFromConfig(cfg)
//	if err != nil {
//	    log.Fatal(err) // no secret, refuse to start
//	}
//
//	func login(w http.ResponseWriter, r *http.Request) {
//	    s := mgr.Load(r)
//	    s.SetSubject(user.ID.String())
//	    s.Set("username", user.Username)
//	    s.Set("role", user.Role)
//	    if _, err := mgr.Save(w, s); err != nil { ... }
//	}
//
// # Confidentiality
//
// Session attributes are signed but not encrypted; the client can read
// them. They are tamper-evident application data, not secrets.
package session
