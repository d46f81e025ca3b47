package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Dimacs holds the variables and clauses of a CNF problem described in
// DIMACS format
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
type Dimacs struct {
	numVariables int
	clauses      [][]int
}

// NumVariables returns the number of variables declared in the header.
func (d *Dimacs) NumVariables() int {
	return d.numVariables
}

// Clauses returns the clauses as signed literal slices. A positive literal
// n stands for variable n, a negative literal -n for its negation.
func (d *Dimacs) Clauses() [][]int {
	return d.clauses
}

// NewDimacs parses the DIMACS formatted stream afforded by dimacsReader.
func NewDimacs(dimacsReader io.Reader) (*Dimacs, error) {
	reader := bufio.NewReader(dimacsReader)

	variableSet := map[int]struct{}{}
	numVariables := 0
	numClauses := 0
	var clauses [][]int

	commentLine := regexp.MustCompile(`^c\s*.*`)
	headerLine := regexp.MustCompile(`^p cnf\s+\d+\s+\d+\s*`)
	clauseLine := regexp.MustCompile(`^(-?\d+\s+)+0`)
	cleanInput := regexp.MustCompile(`\s\s+`)

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading dimacs data: %w", err)
		}
		line = strings.TrimSpace(line)

		// ignore comments
		if commentLine.MatchString(line) {
			continue
		}

		// parse header
		if headerLine.MatchString(line) {
			line = cleanInput.ReplaceAllString(line, " ")
			problem := strings.Split(line, " ")
			if len(problem) != 4 {
				return nil, fmt.Errorf("invalid statement: (%s). Valid format is p cnf <variables> <clauses>", line)
			}
			numVariables, err = strconv.Atoi(problem[2])
			if err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[2], line)
			}
			numClauses, err = strconv.Atoi(problem[3])
			if err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", problem[3], line)
			}
			clauses = make([][]int, 0, numClauses)

			// parse next line
			continue
		}

		// collect clauses
		if clauseLine.MatchString(line) {
			if clauses == nil {
				return nil, fmt.Errorf("invalid dimacs format: missing header 'p cnf <variables> <clauses>'")
			}
			line = cleanInput.ReplaceAllString(line, " ")
			terms := strings.Split(line, " ")
			if terms[len(terms)-1] != "0" {
				return nil, fmt.Errorf("invalid clause (%s): does not end with 0", line)
			}
			terms = terms[:len(terms)-1]
			clause, err := parseClause(terms, numVariables)
			if err != nil {
				return nil, fmt.Errorf("invalid clause (%s): %w", line, err)
			}

			// remember variables seen so the header declaration can be
			// checked against the variables actually used
			for _, lit := range clause {
				if lit < 0 {
					lit = -lit
				}
				variableSet[lit] = struct{}{}
			}
			clauses = append(clauses, clause)

			// parse next line
			continue
		}

		// error out if the instruction is invalid
		return nil, fmt.Errorf("invalid dimacs command: %s", line)
	}

	if numVariables == 0 || numClauses == 0 || clauses == nil {
		return nil, fmt.Errorf("invalid format: no variables or clauses found")
	}

	if len(clauses) != numClauses {
		return nil, fmt.Errorf("invalid format: number of clauses in header differ from the total number of clauses")
	}

	if len(variableSet) != numVariables {
		return nil, fmt.Errorf("invalid format: number of variables in header differ from the total number of unique variables found in clauses")
	}

	return &Dimacs{
		numVariables: numVariables,
		clauses:      clauses,
	}, nil
}

func parseClause(terms []string, numVariables int) ([]int, error) {
	clause := make([]int, 0, len(terms))
	for _, term := range terms {
		lit, err := strconv.Atoi(term)
		if err != nil {
			return nil, fmt.Errorf("%s is not a number", term)
		}
		if lit == 0 {
			return nil, fmt.Errorf("0 is not a valid variable")
		}
		if lit > numVariables || lit < -numVariables {
			return nil, fmt.Errorf("%s is not a valid variable", term)
		}
		clause = append(clause, lit)
	}
	return clause, nil
}
