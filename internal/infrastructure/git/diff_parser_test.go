package git

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomasalvarez/resumate/internal/domain/models"
)

const sampleDiff = `diff --git a/internal/auth/auth.go b/internal/auth/auth.go
index 1234567..89abcde 100644
--- a/internal/auth/auth.go
+++ b/internal/auth/auth.go
@@ -10,7 +10,9 @@ func Login() {
-	old line
+	new line
+	another line
diff --git a/go.sum b/go.sum
index aaa..bbb 100644
--- a/go.sum
+++ b/go.sum
@@ -1,2 +1,3 @@
+github.com/foo v1.0.0
diff --git a/internal/auth/auth_test.go b/internal/auth/auth_test.go
index ccc..ddd 100644
--- a/internal/auth/auth_test.go
+++ b/internal/auth/auth_test.go
@@ -5,0 +6,2 @@
+func TestLogin(t *testing.T) {}
`

func TestDiffParser_Parse(t *testing.T) {
	parser := NewDiffParser()

	files := parser.Parse(sampleDiff)

	require.Len(t, files, 3)
	assert.Equal(t, "internal/auth/auth.go", files[0].Path)
	assert.Equal(t, "go.sum", files[1].Path)
	assert.Equal(t, "internal/auth/auth_test.go", files[2].Path)

	// El orden de aparición se preserva y cada sección conserva su encabezado.
	for _, f := range files {
		assert.True(t, strings.HasPrefix(f.Content, "diff --git "))
		assert.Positive(t, f.TokenCount)
	}
}

func TestDiffParser_Counts(t *testing.T) {
	parser := NewDiffParser()

	files := parser.Parse(sampleDiff)

	require.Len(t, files, 3)
	assert.Equal(t, 2, files[0].Additions)
	assert.Equal(t, 1, files[0].Deletions)
	assert.Equal(t, 1, files[1].Additions)
	assert.Equal(t, 0, files[1].Deletions)
}

func TestDiffParser_Priorities(t *testing.T) {
	parser := NewDiffParser()

	files := parser.Parse(sampleDiff)

	require.Len(t, files, 3)
	assert.Equal(t, models.PriorityHigh, files[0].Priority)
	assert.Equal(t, models.PriorityLow, files[1].Priority)
	assert.Equal(t, models.PriorityMedium, files[2].Priority)
}

func TestDiffParser_EmptyDiff(t *testing.T) {
	parser := NewDiffParser()

	assert.Empty(t, parser.Parse(""))
	assert.Empty(t, parser.Parse("   \n  "))
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("abc"))
	assert.Equal(t, 1, EstimateTokens("abcd"))
	assert.Equal(t, 2, EstimateTokens("abcde"))
}
