package bigo

// bankLanguageOrder fixes the display order of bank languages.
var bankLanguageOrder = []string{"python", "javascript", "go", "java"}

// builtinExamples is the static quiz data table. Snippets are
// intentionally small and idiomatic for their language; the explanation is
// shown after the player answers.
var builtinExamples = map[string][]Example{
	"python": {
		{
			Language: "python",
			Code: `def first(items):
    return items[0]`,
			Complexity:  ComplexityConstant,
			Explanation: "Indexing a list is a single memory access regardless of list size.",
		},
		{
			Language: "python",
			Code: `def total(items):
    s = 0
    for x in items:
        s += x
    return s`,
			Complexity:  ComplexityLinear,
			Explanation: "One pass over n items, constant work per item.",
		},
		{
			Language: "python",
			Code: `def has_pair_sum(items, target):
    for i in range(len(items)):
        for j in range(i + 1, len(items)):
            if items[i] + items[j] == target:
                return True
    return False`,
			Complexity:  ComplexityQuadratic,
			Explanation: "Every pair of items is compared: n*(n-1)/2 iterations.",
		},
		{
			Language: "python",
			Code: `def search(sorted_items, target):
    lo, hi = 0, len(sorted_items) - 1
    while lo <= hi:
        mid = (lo + hi) // 2
        if sorted_items[mid] == target:
            return mid
        if sorted_items[mid] < target:
            lo = mid + 1
        else:
            hi = mid - 1
    return -1`,
			Complexity:  ComplexityLogarithmic,
			Explanation: "Binary search halves the range each step; log2(n) iterations.",
		},
		{
			Language: "python",
			Code: `def sort_then_scan(items):
    items.sort()
    for x in items:
        print(x)`,
			Complexity:  ComplexityLinearithmic,
			Explanation: "Timsort dominates at O(n log n); the scan adds only O(n).",
		},
		{
			Language: "python",
			Code: `def fib(n):
    if n <= 1:
        return n
    return fib(n - 1) + fib(n - 2)`,
			Complexity:  ComplexityExponential,
			Explanation: "Naive recursion branches twice per call with no memoization.",
		},
		{
			Language: "python",
			Code: `def is_prime(n):
    i = 2
    while i * i <= n:
        if n % i == 0:
            return False
        i += 1
    return True`,
			Complexity:  ComplexitySquareRoot,
			Explanation: "Trial division only needs to test divisors up to sqrt(n).",
		},
		{
			Language: "python",
			Code: `def matmul(a, b, n):
    c = [[0] * n for _ in range(n)]
    for i in range(n):
        for j in range(n):
            for k in range(n):
                c[i][j] += a[i][k] * b[k][j]
    return c`,
			Complexity:  ComplexityCubic,
			Explanation: "Three nested loops over n: the classic n^3 matrix multiply.",
		},
		{
			Language: "python",
			Code: `def middle(items):
    return items[len(items) // 2]`,
			Complexity:  ComplexityConstant,
			Explanation: "Length and indexing are both O(1) on a Python list.",
		},
		{
			Language: "python",
			Code: `def count_common(a, b):
    seen = set(a)
    return sum(1 for x in b if x in seen)`,
			Complexity:  ComplexityLinear,
			Explanation: "Building the set is O(len(a)), membership tests are O(1) each.",
		},
		{
			Language: "python",
			Code: `def subsets(items):
    if not items:
        return [[]]
    rest = subsets(items[1:])
    return rest + [[items[0]] + s for s in rest]`,
			Complexity:  ComplexityExponential,
			Explanation: "A set of n items has 2^n subsets, and all are produced.",
		},
		{
			Language: "python",
			Code: `def bubble(items):
    for i in range(len(items)):
        for j in range(len(items) - 1 - i):
            if items[j] > items[j + 1]:
                items[j], items[j + 1] = items[j + 1], items[j]`,
			Complexity:  ComplexityQuadratic,
			Explanation: "Bubble sort compares adjacent pairs in two nested passes.",
		},
	},
	"javascript": {
		{
			Language: "javascript",
			Code: `function last(items) {
  return items[items.length - 1];
}`,
			Complexity:  ComplexityConstant,
			Explanation: "Array length and indexing are constant-time operations.",
		},
		{
			Language: "javascript",
			Code: `function max(items) {
  let best = -Infinity;
  for (const x of items) {
    if (x > best) best = x;
  }
  return best;
}`,
			Complexity:  ComplexityLinear,
			Explanation: "A single pass touches each element exactly once.",
		},
		{
			Language: "javascript",
			Code: `function countDigits(n) {
  let count = 0;
  while (n > 0) {
    n = Math.floor(n / 10);
    count++;
  }
  return count;
}`,
			Complexity:  ComplexityLogarithmic,
			Explanation: "n shrinks by a factor of 10 each step: log10(n) iterations.",
		},
		{
			Language: "javascript",
			Code: `function hasDuplicate(items) {
  for (let i = 0; i < items.length; i++) {
    for (let j = i + 1; j < items.length; j++) {
      if (items[i] === items[j]) return true;
    }
  }
  return false;
}`,
			Complexity:  ComplexityQuadratic,
			Explanation: "All pairs are checked; use a Set for a linear version.",
		},
		{
			Language: "javascript",
			Code: `function sortWords(words) {
  return [...words].sort((a, b) => a.localeCompare(b));
}`,
			Complexity:  ComplexityLinearithmic,
			Explanation: "Comparison sorts are O(n log n); the copy adds O(n).",
		},
		{
			Language: "javascript",
			Code: `function powerSet(items) {
  if (items.length === 0) return [[]];
  const rest = powerSet(items.slice(1));
  return rest.concat(rest.map((s) => [items[0], ...s]));
}`,
			Complexity:  ComplexityExponential,
			Explanation: "The output itself has 2^n subsets, so no algorithm does better.",
		},
		{
			Language: "javascript",
			Code: `function divisorCount(n) {
  let count = 0;
  for (let i = 1; i * i <= n; i++) {
    if (n % i === 0) count += i * i === n ? 1 : 2;
  }
  return count;
}`,
			Complexity:  ComplexitySquareRoot,
			Explanation: "Divisors pair up around sqrt(n), so the loop stops there.",
		},
		{
			Language: "javascript",
			Code: `function allTriples(items) {
  const out = [];
  for (const a of items)
    for (const b of items)
      for (const c of items) out.push([a, b, c]);
  return out;
}`,
			Complexity:  ComplexityCubic,
			Explanation: "Three nested loops over the same n items produce n^3 triples.",
		},
		{
			Language: "javascript",
			Code: `function swap(pair) {
  return [pair[1], pair[0]];
}`,
			Complexity:  ComplexityConstant,
			Explanation: "The input size is fixed; no loop depends on n.",
		},
		{
			Language: "javascript",
			Code: `function frequency(items) {
  const counts = new Map();
  for (const x of items) {
    counts.set(x, (counts.get(x) ?? 0) + 1);
  }
  return counts;
}`,
			Complexity:  ComplexityLinear,
			Explanation: "One pass with O(1) map operations per element.",
		},
	},
	"go": {
		{
			Language: "go",
			Code: `func head(items []int) (int, bool) {
	if len(items) == 0 {
		return 0, false
	}
	return items[0], true
}`,
			Complexity:  ComplexityConstant,
			Explanation: "Slice length and indexing are constant-time.",
		},
		{
			Language: "go",
			Code: `func contains(items []string, target string) bool {
	for _, s := range items {
		if s == target {
			return true
		}
	}
	return false
}`,
			Complexity:  ComplexityLinear,
			Explanation: "Worst case scans all n elements once.",
		},
		{
			Language: "go",
			Code: `func search(sorted []int, target int) int {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}`,
			Complexity:  ComplexityLogarithmic,
			Explanation: "The search space halves every iteration.",
		},
		{
			Language: "go",
			Code: `func closestPair(points []Point) (Point, Point) {
	var a, b Point
	best := math.MaxFloat64
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if d := dist(points[i], points[j]); d < best {
				best, a, b = d, points[i], points[j]
			}
		}
	}
	return a, b
}`,
			Complexity:  ComplexityQuadratic,
			Explanation: "Brute force distance check over every pair of points.",
		},
		{
			Language: "go",
			Code: `func ranked(scores []int) []int {
	out := make([]int, len(scores))
	copy(out, scores)
	sort.Ints(out)
	return out
}`,
			Complexity:  ComplexityLinearithmic,
			Explanation: "sort.Ints is O(n log n); copying is O(n).",
		},
		{
			Language: "go",
			Code: `func perms(items []int) [][]int {
	if len(items) <= 1 {
		return [][]int{append([]int{}, items...)}
	}
	var out [][]int
	for i := range items {
		rest := append(append([]int{}, items[:i]...), items[i+1:]...)
		for _, p := range perms(rest) {
			out = append(out, append([]int{items[i]}, p...))
		}
	}
	return out
}`,
			Complexity:  ComplexityExponential,
			Explanation: "n! permutations are generated, which grows faster than 2^n.",
		},
		{
			Language: "go",
			Code: `func isqrt(n int) int {
	i := 0
	for (i+1)*(i+1) <= n {
		i++
	}
	return i
}`,
			Complexity:  ComplexitySquareRoot,
			Explanation: "The counter only runs up to sqrt(n) before the loop ends.",
		},
		{
			Language: "go",
			Code: `func transitiveClosure(adj [][]bool) {
	n := len(adj)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				adj[i][j] = adj[i][j] || (adj[i][k] && adj[k][j])
			}
		}
	}
}`,
			Complexity:  ComplexityCubic,
			Explanation: "Floyd-Warshall style triple loop over n vertices.",
		},
	},
	"java": {
		{
			Language: "java",
			Code: `static int first(int[] items) {
    return items[0];
}`,
			Complexity:  ComplexityConstant,
			Explanation: "Array indexing is a direct memory access.",
		},
		{
			Language: "java",
			Code: `static int sum(int[] items) {
    int s = 0;
    for (int x : items) s += x;
    return s;
}`,
			Complexity:  ComplexityLinear,
			Explanation: "One pass over the array, constant work per element.",
		},
		{
			Language: "java",
			Code: `static boolean search(int[] sorted, int target) {
    int lo = 0, hi = sorted.length - 1;
    while (lo <= hi) {
        int mid = (lo + hi) >>> 1;
        if (sorted[mid] == target) return true;
        if (sorted[mid] < target) lo = mid + 1;
        else hi = mid - 1;
    }
    return false;
}`,
			Complexity:  ComplexityLogarithmic,
			Explanation: "Classic binary search: the range halves each iteration.",
		},
		{
			Language: "java",
			Code: `static void selectionSort(int[] items) {
    for (int i = 0; i < items.length; i++) {
        int min = i;
        for (int j = i + 1; j < items.length; j++) {
            if (items[j] < items[min]) min = j;
        }
        int t = items[i]; items[i] = items[min]; items[min] = t;
    }
}`,
			Complexity:  ComplexityQuadratic,
			Explanation: "Selection sort scans the remainder for every position.",
		},
		{
			Language: "java",
			Code: `static int[] sorted(int[] items) {
    int[] out = items.clone();
    Arrays.sort(out);
    return out;
}`,
			Complexity:  ComplexityLinearithmic,
			Explanation: "Arrays.sort on primitives is a dual-pivot quicksort, O(n log n).",
		},
		{
			Language: "java",
			Code: `static long count(int n) {
    if (n <= 0) return 1;
    return count(n - 1) + count(n - 1);
}`,
			Complexity:  ComplexityExponential,
			Explanation: "Each call spawns two more: 2^n calls in total.",
		},
		{
			Language: "java",
			Code: `static boolean isPrime(long n) {
    for (long i = 2; i * i <= n; i++) {
        if (n % i == 0) return false;
    }
    return n > 1;
}`,
			Complexity:  ComplexitySquareRoot,
			Explanation: "Only divisors up to sqrt(n) need checking.",
		},
		{
			Language: "java",
			Code: `static int[][] multiply(int[][] a, int[][] b, int n) {
    int[][] c = new int[n][n];
    for (int i = 0; i < n; i++)
        for (int j = 0; j < n; j++)
            for (int k = 0; k < n; k++)
                c[i][j] += a[i][k] * b[k][j];
    return c;
}`,
			Complexity:  ComplexityCubic,
			Explanation: "Triple nested loop: the textbook n^3 matrix product.",
		},
	},
}
