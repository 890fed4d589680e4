package ingestors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullAuditLine = `{"transaction":{"time":"18/Apr/2024:15:57:42.807165 +0700","transaction_id":"ZiDghn8pJCj4T7YiUFJH7AAAAEQ","remote_address":"10.0.0.7","remote_port":53122,"local_address":"10.0.0.2","local_port":80},` +
	`"request":{"request_line":"GET /?file=/etc/passwd HTTP/1.1","headers":{"Host":"example.com"}},` +
	`"audit_data":{"messages":["Warning. Matched phrase \"etc/passwd\" at ARGS:file. [file \"/etc/crs/rules/REQUEST-930-APPLICATION-ATTACK-LFI.conf\"] [line \"97\"] [id \"930120\"] [msg \"OS File Access Attempt\"] [data \"Matched Data: etc/passwd found within ARGS:file: /etc/passwd\"] [severity \"CRITICAL\"]","second message"],` +
	`"producer":["ModSecurity for Apache/2.9.3 (http://www.modsecurity.org/)","OWASP_CRS/3.3.2"]}}`

func TestAuditLogParser_Parse_FullLine(t *testing.T) {
	t.Parallel()

	record, err := NewAuditLogParser().Parse(fullAuditLine)
	require.NoError(t, err)

	assert.Equal(t, "2.9.3", record.Version)
	assert.Equal(t, "18/Apr/2024:15:57:42.807165 +0700", record.Timestamp)
	assert.Equal(t, "ZiDghn8pJCj4T7YiUFJH7AAAAEQ", record.TransactionID)
	assert.Equal(t, "10.0.0.7", record.RemoteAddress)
	assert.Equal(t, "53122", record.RemotePort)
	assert.Equal(t, "GET /?file=/etc/passwd HTTP/1.1", record.Path)
	assert.Equal(t, "REQUEST-930-APPLICATION-ATTACK-LFI", record.AttackName)
	assert.Equal(t, "OS File Access Attempt", record.AttackMsg)
	assert.Equal(t, "Matched Data: etc/passwd found within ARGS:file: /etc/passwd", record.AttackData)
	assert.Equal(t, "CRITICAL", record.Severity)
}

func TestAuditLogParser_Parse_MissingSeverity(t *testing.T) {
	t.Parallel()

	line := `{"transaction":{"time":"t","transaction_id":"id-1","remote_address":"10.0.0.8","remote_port":"8080"},` +
		`"request":{"request_line":"POST /login HTTP/1.1"},` +
		`"audit_data":{"messages":["[file \"rules/REQUEST-942-APPLICATION-ATTACK-SQLI.conf\"] [msg \"SQL Injection Attack\"] [data \"Matched Data: 1=1\"]"]}}`

	record, err := NewAuditLogParser().Parse(line)
	require.NoError(t, err)

	assert.Equal(t, "REQUEST-942-APPLICATION-ATTACK-SQLI", record.AttackName)
	assert.Equal(t, "SQL Injection Attack", record.AttackMsg)
	assert.Equal(t, "Matched Data: 1=1", record.AttackData)
	assert.Equal(t, "", record.Severity)
	assert.Equal(t, "8080", record.RemotePort)
	assert.Equal(t, "", record.Version)
}

func TestAuditLogParser_Parse_OptionalSectionsAbsent(t *testing.T) {
	t.Parallel()

	record, err := NewAuditLogParser().Parse(`{"transaction":{"transaction_id":"id-2"}}`)
	require.NoError(t, err)

	assert.Equal(t, "id-2", record.TransactionID)
	assert.Equal(t, "", record.Timestamp)
	assert.Equal(t, "", record.RemotePort)
	assert.Equal(t, "", record.Path)
	assert.Equal(t, "", record.AttackName)
	assert.Equal(t, "", record.AttackMsg)
	assert.Equal(t, "", record.AttackData)
	assert.Equal(t, "", record.Severity)
	assert.Equal(t, "", record.Version)
}

func TestAuditLogParser_Parse_ProducerAsString(t *testing.T) {
	t.Parallel()

	line := `{"transaction":{"transaction_id":"id-3"},"audit_data":{"producer":"ModSecurity v3.0.12 (Linux)","messages":[]}}`
	record, err := NewAuditLogParser().Parse(line)
	require.NoError(t, err)
	assert.Equal(t, "", record.Version)

	line = `{"transaction":{"transaction_id":"id-4"},"audit_data":{"producer":"libmodsecurity/3.0.12"}}`
	record, err = NewAuditLogParser().Parse(line)
	require.NoError(t, err)
	assert.Equal(t, "3.0.12", record.Version)
}

func TestAuditLogParser_Parse_MalformedJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
	}{
		{name: "not json", line: `GET / HTTP/1.1`},
		{name: "truncated", line: `{"transaction":{"time":"t"`},
		{name: "array", line: `[{"transaction":{}}]`},
		{name: "missing transaction", line: `{"request":{"request_line":"GET / HTTP/1.1"}}`},
		{name: "transaction not an object", line: `{"transaction":"abc"}`},
		{name: "null", line: `null`},
	}

	parser := NewAuditLogParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			record, err := parser.Parse(tt.line)
			assert.Nil(t, record)
			assert.ErrorIs(t, err, ErrMalformedJSON)
		})
	}
}

func TestAttackName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "REQUEST-930-APPLICATION-ATTACK-LFI", attackName("/etc/crs/rules/REQUEST-930-APPLICATION-ATTACK-LFI.conf"))
	assert.Equal(t, "custom", attackName("custom.conf"))
	assert.Equal(t, "rule.conf.bak", attackName("/a/rule.conf.bak"))
}
