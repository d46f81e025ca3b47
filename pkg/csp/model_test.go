package csp_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

var _ = Describe("Model", func() {
	Describe("AddVariable", func() {
		It("should reject an empty domain", func() {
			model := csp.NewModel[int]()
			err := model.AddVariable("a")
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&csp.ModelError{}))
		})
		It("should drop duplicate values keeping first occurrence", func() {
			model := csp.NewModel[int]()
			Expect(model.AddVariable("a", 2, 1, 2, 3, 1)).To(Succeed())
			Expect(model.Domain("a")).To(Equal([]int{2, 1, 3}))
		})
		It("should replace the domain when a variable is re-added", func() {
			model := csp.NewModel[int]()
			Expect(model.AddVariable("a", 1, 2)).To(Succeed())
			Expect(model.AddVariable("a", 7)).To(Succeed())
			Expect(model.Domain("a")).To(Equal([]int{7}))
			Expect(model.VariableCount()).To(Equal(1))
		})
		It("should keep declaration order", func() {
			model := csp.NewModel[int]()
			Expect(model.AddVariable("z", 1)).To(Succeed())
			Expect(model.AddVariable("a", 1)).To(Succeed())
			Expect(model.Variables()).To(Equal([]csp.Identifier{"z", "a"}))
		})
	})

	Describe("AddConstraint", func() {
		It("should reject an empty scope", func() {
			model := csp.NewModel[int]()
			err := model.AddConstraint(csp.NewConstraint(nil, csp.AllDifferent[int]()))
			Expect(err).To(BeAssignableToTypeOf(&csp.ModelError{}))
		})
		It("should reject unknown variables", func() {
			model := csp.NewModel[int]()
			Expect(model.AddVariable("a", 1)).To(Succeed())
			err := model.AddConstraint(csp.NewConstraint(
				[]csp.Identifier{"a", "ghost"}, csp.AllDifferent[int]()))
			Expect(err).To(BeAssignableToTypeOf(&csp.ModelError{}))
			Expect(err.Error()).To(ContainSubstring("ghost"))
		})
		It("should index constraints by variable", func() {
			model := csp.NewModel[int]()
			Expect(model.AddVariable("a", 1, 2)).To(Succeed())
			Expect(model.AddVariable("b", 1, 2)).To(Succeed())
			Expect(model.AddVariable("c", 1, 2)).To(Succeed())
			Expect(model.AddConstraint(csp.NewConstraint(
				[]csp.Identifier{"a", "b"}, csp.AllDifferent[int]()))).To(Succeed())

			Expect(model.ConstraintsOn("a")).To(HaveLen(1))
			Expect(model.ConstraintsOn("c")).To(BeEmpty())
			Expect(model.ConstraintCount()).To(Equal(1))
		})
	})

	Describe("Neighbors", func() {
		It("should derive sorted adjacency from shared scopes", func() {
			model := csp.NewModel[int]()
			for _, id := range []csp.Identifier{"a", "b", "c", "d"} {
				Expect(model.AddVariable(id, 1, 2)).To(Succeed())
			}
			Expect(model.AddConstraint(csp.NewConstraint(
				[]csp.Identifier{"c", "a", "b"}, csp.AllDifferent[int]()))).To(Succeed())

			neighbors := model.Neighbors()
			Expect(neighbors["a"]).To(Equal([]csp.Identifier{"b", "c"}))
			Expect(neighbors["b"]).To(Equal([]csp.Identifier{"a", "c"}))
			Expect(neighbors["d"]).To(BeEmpty())
		})
	})

	Describe("IsConsistent", func() {
		var model *csp.Model[int]

		BeforeEach(func() {
			model = csp.NewModel[int]()
			Expect(model.AddVariable("a", 1, 2)).To(Succeed())
			Expect(model.AddVariable("b", 1, 2)).To(Succeed())
			Expect(model.AddConstraint(csp.NewConstraint(
				[]csp.Identifier{"a", "b"}, csp.AllDifferent[int]()))).To(Succeed())
		})

		It("should check the candidate against the partial assignment", func() {
			assignment := csp.Assignment[int]{"a": 1}
			Expect(model.IsConsistent("b", 1, assignment)).To(BeFalse())
			Expect(model.IsConsistent("b", 2, assignment)).To(BeTrue())
		})
		It("should leave the assignment untouched", func() {
			assignment := csp.Assignment[int]{"a": 1}
			model.IsConsistent("b", 2, assignment)
			Expect(assignment).To(Equal(csp.Assignment[int]{"a": 1}))
		})
	})

	Describe("IsSolution", func() {
		It("should require completeness and satisfaction", func() {
			model := csp.NewModel[int]()
			Expect(model.AddVariable("a", 1, 2)).To(Succeed())
			Expect(model.AddVariable("b", 1, 2)).To(Succeed())
			Expect(model.AddConstraint(csp.NewConstraint(
				[]csp.Identifier{"a", "b"}, csp.AllDifferent[int]()))).To(Succeed())

			Expect(model.IsSolution(csp.Assignment[int]{"a": 1})).To(BeFalse())
			Expect(model.IsSolution(csp.Assignment[int]{"a": 1, "b": 1})).To(BeFalse())
			Expect(model.IsSolution(csp.Assignment[int]{"a": 1, "b": 2})).To(BeTrue())
		})
	})
})

var _ = Describe("Assignment", func() {
	It("should clone independently", func() {
		original := csp.Assignment[int]{"a": 1}
		clone := original.Clone()
		clone["a"] = 2
		clone["b"] = 3
		Expect(original).To(Equal(csp.Assignment[int]{"a": 1}))
	})
	It("should clone nil as nil", func() {
		var a csp.Assignment[int]
		Expect(a.Clone()).To(BeNil())
	})
})

var _ = Describe("Errors", func() {
	It("should format model errors", func() {
		err := csp.NewModelError("variable %q is broken", "a")
		Expect(err.Error()).To(Equal(`invalid model: variable "a" is broken`))
	})
	It("should format configuration errors", func() {
		err := csp.NewConfigurationError("unknown technique %q", "bogus")
		Expect(err.Error()).To(Equal(`invalid solver configuration: unknown technique "bogus"`))
	})
})
