// Package fieldset validates a decoded submission (for example a JSON
// request body) against a list of declared fields. Each field is handed to
// the validator for its kind; fields never influence one another. Objects
// and arrays are walked so nested violations are reported under dotted
// paths such as "address.city" or "tags.1".
package fieldset
