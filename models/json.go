// ABOUTME: JSON decode hooks that parse wire state strings into enums
package models

import "encoding/json"

func (s *StreamSummary) UnmarshalJSON(data []byte) error {
	type alias StreamSummary
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = StreamSummary(a)
	s.State = ParseStreamState(s.RawState)
	return nil
}

func (r *SalaryRun) UnmarshalJSON(data []byte) error {
	type alias SalaryRun
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*r = SalaryRun(a)
	r.Status = ParseSalaryStatus(r.RawStatus)
	return nil
}
