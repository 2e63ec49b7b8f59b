package tree

// BinarySearch looks for needle in the slice s, which must be sorted by
// compare. It returns (index, found) where if found = false, needle is not
// present in s, and if found = true, compare(s[index], needle) == 0.
//
// If needle appears multiple times in s, index is the first occurrence.
func BinarySearch[T any](s []T, needle T, compare func(a, b T) int) (uint64, bool) {
	var i = uint64(0)
	var j = uint64(len(s))
	for i < j {
		mid := i + (j-i)/2
		if compare(s[mid], needle) < 0 {
			i = mid + 1
		} else {
			j = mid
		}
	}
	if i < uint64(len(s)) {
		return i, compare(s[i], needle) == 0
	}
	return i, false
}
