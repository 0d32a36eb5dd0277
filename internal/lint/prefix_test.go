package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonPrefix(t *testing.T) {
	assert.Equal(t, "fooBar", commonPrefix("fooBarBaz", "fooBarTest"))
	assert.Equal(t, "", commonPrefix("alpha", "beta"))
	assert.Equal(t, "foo", commonPrefix("foo", "fooBar"))
	assert.Equal(t, "", commonPrefix("", "foo"))
}

func TestSplitGroupsSharedPrefix(t *testing.T) {
	groups := SplitByCommonPrefixes([]string{"fooBarBaz", "fooBarTest", "fooBar"}, DefaultMinPrefixLength)

	require.Len(t, groups, 1)
	assert.Equal(t, "fooBar", groups[0].Prefix)
	assert.Equal(t, []string{"fooBarBaz", "fooBarTest", "fooBar"}, groups[0].Members)
}

func TestSplitNoSharedPrefixYieldsSingletons(t *testing.T) {
	groups := SplitByCommonPrefixes([]string{"1FooBar", "2FooBar", "3FooBar"}, DefaultMinPrefixLength)

	require.Len(t, groups, 3)
	for i, kw := range []string{"1FooBar", "2FooBar", "3FooBar"} {
		assert.Equal(t, kw, groups[i].Prefix)
		assert.Equal(t, []string{kw}, groups[i].Members)
	}
}

func TestSplitGreedyExtensionDropsShortMember(t *testing.T) {
	// Once the working prefix grows from "FooBar" to "FooBarLong",
	// "FooBarShort" no longer matches and falls back into the pool.
	groups := SplitByCommonPrefixes(
		[]string{"FooBarLong", "FooBarShort", "FooBarLonger"}, DefaultMinPrefixLength)

	require.Len(t, groups, 2)
	assert.Equal(t, "FooBarLong", groups[0].Prefix)
	assert.Equal(t, []string{"FooBarLong", "FooBarLonger"}, groups[0].Members)
	assert.Equal(t, "FooBarShort", groups[1].Prefix)
	assert.Equal(t, []string{"FooBarShort"}, groups[1].Members)
}

func TestSplitMinPrefixLength(t *testing.T) {
	keywords := []string{"Foo1", "Foo2", "Foo3"}

	groups := SplitByCommonPrefixes(keywords, 3)
	require.Len(t, groups, 1)
	assert.Equal(t, "Foo", groups[0].Prefix)
	assert.Equal(t, keywords, groups[0].Members)

	// A longer minimum keeps the accidental overlap apart.
	groups = SplitByCommonPrefixes(keywords, 4)
	require.Len(t, groups, 3)
}

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, SplitByCommonPrefixes(nil, DefaultMinPrefixLength))
}
