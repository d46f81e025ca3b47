package csp_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

var _ = Describe("Relation", func() {
	Describe("Tuples", func() {
		scope := []csp.Identifier{"x", "y"}

		It("should permit exactly the listed combinations", func() {
			c := csp.NewConstraint(scope, csp.Tuples([][]int{{2, 1}, {1, 2}}))
			Expect(c.Satisfied(csp.Assignment[int]{"x": 1, "y": 2})).To(BeTrue())
			Expect(c.Satisfied(csp.Assignment[int]{"x": 2, "y": 1})).To(BeTrue())
			Expect(c.Satisfied(csp.Assignment[int]{"x": 1, "y": 1})).To(BeFalse())
		})
		It("should be vacuously satisfied on a partial scope", func() {
			c := csp.NewConstraint(scope, csp.Tuples([][]int{{1, 2}}))
			Expect(c.Satisfied(csp.Assignment[int]{"x": 9})).To(BeTrue())
			Expect(c.Satisfied(csp.Assignment[int]{})).To(BeTrue())
		})
		It("should expose its tuples in lexicographic order", func() {
			r := csp.Tuples([][]int{{3, 1}, {1, 2}, {2, 2}})
			Expect(r.IsExplicit()).To(BeTrue())
			Expect(r.PermittedTuples()).To(Equal([][]int{{1, 2}, {2, 2}, {3, 1}}))
		})
		It("should copy the rows it is given", func() {
			row := []int{1, 2}
			r := csp.Tuples([][]int{row})
			row[0] = 99
			Expect(r.PermittedTuples()).To(Equal([][]int{{1, 2}}))
		})
	})

	Describe("Predicate", func() {
		scope := []csp.Identifier{"x", "y"}
		lessThan := csp.NewConstraint(scope, csp.Predicate(func(values []int) bool {
			return values[0] < values[1]
		}))

		It("should receive values in scope order", func() {
			Expect(lessThan.Satisfied(csp.Assignment[int]{"x": 1, "y": 2})).To(BeTrue())
			Expect(lessThan.Satisfied(csp.Assignment[int]{"x": 2, "y": 1})).To(BeFalse())
		})
		It("should be vacuously satisfied until the scope is complete", func() {
			Expect(lessThan.Satisfied(csp.Assignment[int]{"x": 5})).To(BeTrue())
		})
		It("should not be explicit", func() {
			Expect(csp.Predicate(func([]int) bool { return true }).IsExplicit()).To(BeFalse())
			Expect(csp.Predicate(func([]int) bool { return true }).PermittedTuples()).To(BeNil())
		})
	})

	Describe("AllDifferent", func() {
		c := csp.NewConstraint([]csp.Identifier{"x", "y", "z"}, csp.AllDifferent[int]())

		It("should reject duplicates among assigned variables", func() {
			Expect(c.Satisfied(csp.Assignment[int]{"x": 1, "y": 1})).To(BeFalse())
		})
		It("should accept distinct partial assignments", func() {
			Expect(c.Satisfied(csp.Assignment[int]{"x": 1, "y": 2})).To(BeTrue())
		})
		It("should accept the empty assignment", func() {
			Expect(c.Satisfied(csp.Assignment[int]{})).To(BeTrue())
		})
		It("should check the full scope when complete", func() {
			Expect(c.Satisfied(csp.Assignment[int]{"x": 1, "y": 2, "z": 3})).To(BeTrue())
			Expect(c.Satisfied(csp.Assignment[int]{"x": 1, "y": 2, "z": 1})).To(BeFalse())
		})
	})
})

var _ = Describe("Constraint", func() {
	It("should report scope membership", func() {
		c := csp.NewConstraint([]csp.Identifier{"x", "y"}, csp.AllDifferent[int]())
		Expect(c.Involves("x")).To(BeTrue())
		Expect(c.Involves("z")).To(BeFalse())
	})
	It("should copy its scope", func() {
		scope := []csp.Identifier{"x", "y"}
		c := csp.NewConstraint(scope, csp.AllDifferent[int]())
		scope[0] = "mutated"
		Expect(c.Scope()).To(Equal([]csp.Identifier{"x", "y"}))
	})
})
