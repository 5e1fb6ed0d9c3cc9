package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeTree creates files under a fresh temp dir and returns its path
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// fakePrompter answers prompts from a queue and records the titles asked
type fakePrompter struct {
	answers []string
	asked   []string
	err     error
}

func (p *fakePrompter) Ask(title, placeholder string) (string, error) {
	p.asked = append(p.asked, title)
	if p.err != nil {
		return "", p.err
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

const postEntity = `<?php
/**
 * @AccessControl(byAssociation={"owner"}, propagateTo={"comments"})
 */
class Post
{
    /** @var User $owner; */
    private $owner;

    /** @var Collection<Comment> $comments; */
    private $comments;
}
`

const commentEntity = `<?php
/**
 * @AccessControl(byAssociation={"post"})
 */
class Comment
{
    /** @var Post $post; */
    private $post;
}
`
