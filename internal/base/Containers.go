package base

import "strings"

/***************************************
 * StringSet
 ***************************************/

type StringSet []string

func NewStringSet(x ...string) StringSet {
	return x
}

func (set StringSet) Len() int       { return len(set) }
func (set StringSet) Empty() bool    { return len(set) == 0 }
func (set StringSet) Slice() []string { return set }

func (set StringSet) IndexOf(it string) int {
	for i, x := range set {
		if x == it {
			return i
		}
	}
	return -1
}
func (set StringSet) Contains(it ...string) bool {
	for _, x := range it {
		if set.IndexOf(x) < 0 {
			return false
		}
	}
	return true
}
func (set *StringSet) Append(it ...string) {
	*set = append(*set, it...)
}
func (set *StringSet) AppendUniq(it ...string) {
	for _, x := range it {
		if set.IndexOf(x) < 0 {
			*set = append(*set, x)
		}
	}
}
func (set *StringSet) Prepend(it ...string) {
	*set = append(append(make(StringSet, 0, len(it)+len(*set)), it...), *set...)
}
func (set *StringSet) Remove(it ...string) {
	for _, x := range it {
		if i := set.IndexOf(x); i >= 0 {
			*set = append((*set)[:i], (*set)[i+1:]...)
		}
	}
}
func (set *StringSet) Clear() {
	*set = (*set)[:0]
}
func (set StringSet) Concat(it ...string) StringSet {
	result := make(StringSet, 0, len(set)+len(it))
	result = append(result, set...)
	return append(result, it...)
}
func (set StringSet) Join(delim string) string {
	return strings.Join(set, delim)
}
func (set StringSet) Equals(other StringSet) bool {
	if len(set) != len(other) {
		return false
	}
	for i, x := range set {
		if other[i] != x {
			return false
		}
	}
	return true
}
