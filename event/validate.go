package event

import "fmt"

// enumCheck pairs an attribute name with the result of its IsValid call.
type enumCheck struct {
	name string
	ok   bool
}

func checkEnums(checks ...enumCheck) error {
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("event: invalid enumeration value for %s", c.name)
		}
	}
	return nil
}
