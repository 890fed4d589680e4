package models

// AuditRecord is one transaction parsed from a ModSecurity JSON audit log line.
//
// Version, AttackName, AttackMsg, AttackData and Severity are each optional in the source
// and are left empty when their tag is absent.
//
// Example source line (abridged):
//
//	{"transaction":{"time":"18/Apr/2024:15:57:42.807165 +0700","transaction_id":"ZiDghn8pJCj4T7YiUFJH7AAAAEQ",
//	 "remote_address":"10.0.0.7","remote_port":53122},
//	 "request":{"request_line":"GET /?file=/etc/passwd HTTP/1.1"},
//	 "audit_data":{"messages":["... [file \"/etc/crs/rules/REQUEST-930-APPLICATION-ATTACK-LFI.conf\"] [msg \"OS File Access Attempt\"] [data \"Matched Data: etc/passwd found within ARGS:file\"] [severity \"CRITICAL\"] ..."],
//	 "producer":["ModSecurity for Apache/2.9.3 (http://www.modsecurity.org/)"]}}
type AuditRecord struct {
	Version       string `json:"version"`
	Timestamp     string `json:"timestamp"`
	TransactionID string `json:"transactionId"`
	RemoteAddress string `json:"remoteAddress"`
	RemotePort    string `json:"remotePort"`
	Path          string `json:"path"`
	AttackName    string `json:"attackName"`
	AttackMsg     string `json:"attackMsg"`
	AttackData    string `json:"attackData"`
	Severity      string `json:"severity"`
}
